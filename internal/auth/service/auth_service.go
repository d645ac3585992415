package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/teamtrack-hr/teamtrack-backend/config"
	"github.com/teamtrack-hr/teamtrack-backend/internal/auth/domain"
)

// AuthService owns the Google OAuth flow and the one-time role resolution.
type AuthService struct {
	oauth          *oauth2.Config
	hrEmails       map[string]struct{}
	allowedDomains []string
}

func NewAuthService(cfg config.GoogleConfig, baseURL string) *AuthService {
	hr := make(map[string]struct{}, len(cfg.HREmails))
	for _, email := range cfg.HREmails {
		hr[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}

	return &AuthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  strings.TrimRight(baseURL, "/") + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		hrEmails:       hr,
		allowedDomains: cfg.AllowedDomains,
	}
}

// AuthURL is the Google consent page URL carrying the given state.
func (s *AuthService) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for userinfo and produces the typed
// session user, enforcing the allowed-domain list.
func (s *AuthService) Exchange(ctx context.Context, code string) (domain.User, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return domain.User{}, fmt.Errorf("code exchange: %w", err)
	}

	svc, err := googleoauth.NewService(ctx, option.WithTokenSource(s.oauth.TokenSource(ctx, token)))
	if err != nil {
		return domain.User{}, fmt.Errorf("userinfo service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return domain.User{}, fmt.Errorf("fetch userinfo: %w", err)
	}

	if !s.DomainAllowed(info.Email) {
		return domain.User{}, domain.ErrDomainNotAllowed
	}

	return domain.User{
		Email: info.Email,
		Name:  info.Name,
		Role:  s.ResolveRole(info.Email),
	}, nil
}

// ResolveRole returns hr iff email is on the configured HR list. Membership
// is case-insensitive; addresses are compared lowercased.
func (s *AuthService) ResolveRole(email string) domain.Role {
	if _, ok := s.hrEmails[strings.ToLower(strings.TrimSpace(email))]; ok {
		return domain.RoleHR
	}
	return domain.RoleEmployee
}

// DomainAllowed checks the sign-in domain list; an empty list allows any.
func (s *AuthService) DomainAllowed(email string) bool {
	if len(s.allowedDomains) == 0 {
		return true
	}

	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	emailDomain := strings.ToLower(email[at+1:])

	for _, d := range s.allowedDomains {
		if strings.EqualFold(strings.TrimSpace(d), emailDomain) {
			return true
		}
	}
	return false
}
