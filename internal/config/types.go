package config

// Config represents the blogkit configuration file.
type Config struct {
	Version string         `yaml:"version"`
	Site    SiteConfig     `yaml:"site"`
	Content ContentConfig  `yaml:"content"`
	Blog    BlogConfig     `yaml:"blog,omitempty"`
	Output  OutputConfig   `yaml:"output"`
	Preview *PreviewConfig `yaml:"preview,omitempty"`
}

// SiteConfig identifies the site the blog belongs to.
type SiteConfig struct {
	Title   string `yaml:"title"`    // Site title shown in page headers
	BaseURL string `yaml:"base_url"` // Absolute base URL, used to resolve `/`-rooted asset paths
}

// ContentConfig locates blog content and the shared authors map.
type ContentConfig struct {
	Dir           string `yaml:"dir"`            // Directory scanned for Markdown posts
	AuthorsFile   string `yaml:"authors_file"`   // Path to the authors map YAML (optional)
	IncludeDrafts bool   `yaml:"include_drafts"` // Build posts marked draft
	IncludeFuture bool   `yaml:"include_future"` // Build posts dated in the future
}

// BlogConfig tunes listing generation.
type BlogConfig struct {
	PageSize        int    `yaml:"page_size"`         // Posts per author listing page
	AuthorsBasePath string `yaml:"authors_base_path"` // URL path prefix for author pages
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"` // Output directory for generated pages
}

// PreviewConfig represents local preview server configuration.
type PreviewConfig struct {
	Port int `yaml:"port"` // HTTP port for the preview file server
}
