package claims

import (
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/skillsenselab/grantkit/errors"
	"github.com/skillsenselab/grantkit/privilege"
)

// GrantClaims is the JWT payload: registered claims plus the principal's
// privilege token collection. The subject is the principal ID.
type GrantClaims struct {
	gojwt.RegisteredClaims
	Privileges []string `json:"privileges"`
}

// Collection returns the carried tokens as a privilege token collection.
func (c *GrantClaims) Collection() []privilege.Token {
	tokens := make([]privilege.Token, len(c.Privileges))
	for i, p := range c.Privileges {
		tokens[i] = privilege.Token(p)
	}
	return tokens
}

// HasAccountPrivilege evaluates an account query over the carried collection.
func (c *GrantClaims) HasAccountPrivilege(area string, min privilege.AccessLevel) (bool, error) {
	return privilege.HasAccountPrivilege(c.Collection(), area, min)
}

// HasProjectPrivilege evaluates a project query over the carried collection.
func (c *GrantClaims) HasProjectPrivilege(contextID, area string, min privilege.AccessLevel) (bool, error) {
	return privilege.HasProjectPrivilege(c.Collection(), contextID, area, min)
}

// Service issues and verifies privilege-carrying JWTs.
type Service struct {
	cfg Config
}

// NewService creates a claims service from config.
func NewService(cfg *Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: *cfg}, nil
}

// Issue signs a JWT carrying the principal's token collection. The
// collection is embedded as-is; callers are expected to pass tokens
// produced by the codec, which guarantees they are well-formed.
func (s *Service) Issue(principalID string, tokens []privilege.Token) (string, error) {
	now := time.Now()
	privileges := make([]string, len(tokens))
	for i, t := range tokens {
		privileges[i] = string(t)
	}

	gc := &GrantClaims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   principalID,
			Issuer:    s.cfg.Issuer,
			Audience:  s.cfg.Audience,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
		Privileges: privileges,
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gc)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("claims: sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a signed JWT and returns the carried claims. Any
// verification failure (signature, expiry, issuer) surfaces as an
// INVALID_TOKEN error with the cause attached.
func (s *Service) Verify(tokenString string) (*GrantClaims, error) {
	gc := &GrantClaims{}
	token, err := gojwt.ParseWithClaims(tokenString, gc, s.keyFunc, s.parserOptions()...)
	if err != nil {
		return nil, errors.InvalidToken().WithCause(err)
	}
	if !token.Valid {
		return nil, errors.InvalidToken()
	}
	return gc, nil
}

// keyFunc is the jwt.Keyfunc used during token parsing.
func (s *Service) keyFunc(token *gojwt.Token) (interface{}, error) {
	if token.Method.Alg() != gojwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("claims: unexpected signing method: %s", token.Method.Alg())
	}
	return []byte(s.cfg.Secret), nil
}

// parserOptions returns jwt.ParserOption based on config.
func (s *Service) parserOptions() []gojwt.ParserOption {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.cfg.Issuer))
	}
	if len(s.cfg.Audience) > 0 {
		opts = append(opts, gojwt.WithAudience(s.cfg.Audience[0]))
	}
	return opts
}
