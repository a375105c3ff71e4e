package cvpdf

// Option configures Render.
type Option func(*renderConfig)

type renderConfig struct {
	layout Layout
}

// WithLayout overrides the default layout. Zero fields keep their defaults.
func WithLayout(l Layout) Option {
	return func(cfg *renderConfig) {
		cfg.layout = cfg.layout.Override(l)
	}
}
