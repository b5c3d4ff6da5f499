package web

func (s *Server) routes() {
	r := s.engine

	r.GET("/healthz", s.handleHealth)
	r.GET("/api/catalog", s.handleCatalogAPI)

	if s.settings.Server.Dev {
		dev := r.Group("/dev")
		dev.POST("/content/reset", s.handleContentReset)
	}

	pages := r.Group("/")
	pages.Use(s.pages.Middleware())
	{
		pages.GET("/", s.handleHome)
		pages.GET("/c/:category", s.handleCategory)
		pages.GET("/p/:slug", s.handleProduct)
		pages.GET("/about", s.handleAbout)
		pages.GET("/contact", s.handleContact)
	}

	r.NoRoute(s.renderNotFound)
}
