package registry

// Landing page groups.
const (
	GroupStatCard    = "stat-card"
	GroupFeatureCard = "feature-card"
	GroupTechLetter  = "tech-letter"
	GroupTechBadge   = "tech-badge"
	GroupTestCard    = "test-card"
)

// LandingCatalogs returns the catalogs for the repeated groups of the landing page.
// Sizes match the number of items the page is designed to render.
func LandingCatalogs() []*Catalog {
	return []*Catalog{
		Sequence(GroupStatCard, "Statistic cards in the stats grid", 4),
		Sequence(GroupFeatureCard, "Feature cards in the platform overview", 4),
		Sequence(GroupTechLetter, "Letter tiles of the technology section", 6),
		Sequence(GroupTechBadge, "Name badges of the technology section", 6),
		Sequence(GroupTestCard, "Runnable test cards in the live demo", 4),
	}
}

// LandingElements returns the static, non-repeated elements of the landing page.
func LandingElements() []Entry {
	return []Entry{
		{ID: "main-wrapper", Name: "Main Wrapper", Description: "Root container of the landing page"},
		{ID: "main-header", Name: "Main Header", Description: "Sticky page header"},
		{ID: "main-nav", Name: "Main Navigation", Description: "Top navigation bar"},
		{ID: "logo-section", Name: "Logo Section", Description: "Logo and brand link"},
		{ID: "brand-name", Name: "Brand Name", Description: "Product name next to the logo"},
		{ID: "nav-actions", Name: "Navigation Actions", Description: "Right-hand navigation actions"},
		{ID: "docs-button", Name: "Docs Button", Description: "Link to the documentation"},
		{ID: "user-section", Name: "User Section", Description: "Signed-in user area"},
		{ID: "welcome-message", Name: "Welcome Message", Description: "Greeting for the signed-in user"},
		{ID: "nav-dashboard-button", Name: "Dashboard Button", Description: "Navigates to the dashboard"},
		{ID: "auth-buttons", Name: "Auth Buttons", Description: "Sign-in and sign-up actions"},
		{ID: "nav-login-button", Name: "Login Button", Description: "Navigates to the login page"},
		{ID: "nav-register-button", Name: "Register Button", Description: "Navigates to the registration page"},
		{ID: "hero-content", Name: "Hero Content", Description: "Hero section"},
		{ID: "hero-content-wrapper", Name: "Hero Content Wrapper", Description: "Centered hero column"},
		{ID: "hero-title", Name: "Hero Title", Description: "Main headline"},
		{ID: "platform-highlight", Name: "Platform Highlight", Description: "Highlighted part of the headline"},
		{ID: "hero-description", Name: "Hero Description", Description: "Headline subtitle"},
		{ID: "hero-cta-buttons", Name: "Hero Call To Action", Description: "Hero action buttons"},
		{ID: "hero-start-testing", Name: "Start Testing Button", Description: "Primary hero action"},
		{ID: "hero-demo-button", Name: "Demo Button", Description: "Secondary hero action"},
		{ID: "stats-content", Name: "Stats Content", Description: "Statistics section"},
		{ID: "stats-grid", Name: "Stats Grid", Description: "Grid holding the stat cards"},
		{ID: "cta-start-project", Name: "Start Project Button", Description: "Closing call to action"},
		{ID: "cta-join-community", Name: "Join Community Button", Description: "Community call to action"},
		{ID: "main-footer", Name: "Main Footer", Description: "Page footer"},
	}
}

// Landing returns the built-in landing page registry.
func Landing() *Registry {
	return MustNew(LandingCatalogs(), LandingElements())
}
