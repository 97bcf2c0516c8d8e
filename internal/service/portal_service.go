package service

import (
	"errors"
	"sync"

	"applicant-portal-be/internal/identity"
	"applicant-portal-be/internal/navigation"
	"applicant-portal-be/internal/pkg/logger"
	"applicant-portal-be/pkg/store"
)

type PortalState string

const (
	StateLoading         PortalState = "loading"
	StateUnauthenticated PortalState = "unauthenticated"
	StateAuthenticated   PortalState = "authenticated"
)

// PortalView is a snapshot of the portal state machine: which page renders
// and, when authenticated, whose session backs it.
type PortalView struct {
	State   PortalState
	Page    navigation.Page
	Session *store.Session
}

var ErrAlreadyAuthenticated = errors.New("navigation is not available while signed in")

type IPortalService interface {
	CurrentView() PortalView
	// Navigate performs an explicit page change between the public pages and
	// returns the history action the caller should apply.
	Navigate(page navigation.Page) (navigation.HistoryAction, error)
	// ObservePath resolves a fresh load of path against the current state and
	// returns the page plus an optional history rewrite.
	ObservePath(path string) (navigation.Page, *navigation.HistoryAction)
	Close()
}

// portalService is the long-lived root of the portal. It holds exactly one
// subscription to the session stream for its whole lifetime and is the only
// component allowed to move between the loading, unauthenticated and
// authenticated states.
type portalService struct {
	provider identity.Provider
	log      logger.ILogger

	mu      sync.RWMutex
	state   PortalState
	page    navigation.Page
	session *store.Session
	path    string

	unsubscribe func()
}

func NewPortalService(provider identity.Provider, log logger.ILogger) (IPortalService, error) {
	s := &portalService{
		provider: provider,
		log:      log,
		state:    StateLoading,
		page:     navigation.PageLanding,
		path:     navigation.PathRoot,
	}

	unsubscribe, err := provider.OnSessionChange(s.handleSessionChange)
	if err != nil {
		return nil, err
	}
	s.unsubscribe = unsubscribe
	return s, nil
}

func (s *portalService) handleSessionChange(session *store.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session != nil && session.Valid() {
		s.state = StateAuthenticated
		s.session = session
		// Authenticated renders the dashboard regardless of the path the
		// browser sits on; the path itself is rewritten to root.
		s.page = navigation.PageDashboard
		s.path = navigation.PathRoot
		s.log.Info("portal_service", "Portal state changed", map[string]interface{}{
			"state":   string(StateAuthenticated),
			"user_id": session.UserId,
		})
		return
	}

	s.state = StateUnauthenticated
	s.session = nil
	s.page = navigation.Resolve(s.path, false)
	s.log.Info("portal_service", "Portal state changed", map[string]interface{}{
		"state": string(StateUnauthenticated),
		"page":  string(s.page),
	})
}

func (s *portalService) CurrentView() PortalView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return PortalView{State: s.state, Page: s.page, Session: s.session}
}

func (s *portalService) Navigate(page navigation.Page) (navigation.HistoryAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAuthenticated {
		return navigation.HistoryAction{}, ErrAlreadyAuthenticated
	}

	action := navigation.Navigate(page)
	s.page = page
	s.path = action.Path
	return action, nil
}

func (s *portalService) ObservePath(path string) (navigation.Page, *navigation.HistoryAction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	authenticated := s.state == StateAuthenticated
	s.path = path
	page := navigation.Resolve(path, authenticated)
	s.page = page

	if action, ok := navigation.RedirectFor(path, authenticated); ok {
		s.path = action.Path
		return page, &action
	}
	return page, nil
}

// Close tears down the session subscription. The service must not be used
// afterwards.
func (s *portalService) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
