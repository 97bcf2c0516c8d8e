package navigation

// Page is one of the four views the portal can show.
type Page string

const (
	PageLanding   Page = "landing"
	PageLogin     Page = "login"
	PageSignup    Page = "signup"
	PageDashboard Page = "dashboard"
)

const (
	PathRoot   = "/"
	PathLogin  = "/login"
	PathSignup = "/signup"
)

// HistoryAction tells the caller how to rewrite the address bar. Replace
// avoids adding a history entry; Push adds one.
type HistoryAction struct {
	Path    string
	Replace bool
}

// Resolve maps the current path and session presence to a page.
// An authenticated visitor always lands on the dashboard, no matter the
// path; unauthenticated visitors get login/signup for their exact paths and
// the landing page for everything else, unknown paths included.
func Resolve(path string, authenticated bool) Page {
	if authenticated {
		return PageDashboard
	}
	switch path {
	case PathLogin:
		return PageLogin
	case PathSignup:
		return PageSignup
	default:
		return PageLanding
	}
}

// RedirectFor returns the address rewrite that must accompany Resolve, if
// any. Authenticated visitors on any path other than the root get a REPLACE
// to the root, so /login never ends up bookmarkable behind a session.
func RedirectFor(path string, authenticated bool) (HistoryAction, bool) {
	if authenticated && path != PathRoot {
		return HistoryAction{Path: PathRoot, Replace: true}, true
	}
	return HistoryAction{}, false
}

// Navigate returns the history push for an explicit navigation request from
// one of the unauthenticated pages.
func Navigate(page Page) HistoryAction {
	switch page {
	case PageLogin:
		return HistoryAction{Path: PathLogin}
	case PageSignup:
		return HistoryAction{Path: PathSignup}
	default:
		return HistoryAction{Path: PathRoot}
	}
}
