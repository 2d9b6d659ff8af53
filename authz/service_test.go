package authz

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/skillsenselab/grantkit/errors"
	"github.com/skillsenselab/grantkit/logger"
	"github.com/skillsenselab/grantkit/privilege"
	"github.com/skillsenselab/grantkit/store"
)

func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	s, err := store.NewMemoryStoreWith([]privilege.Record{
		{PrincipalID: "user-1", Domain: privilege.DomainAccount, Area: "user_management", Level: privilege.Delete},
		{PrincipalID: "user-1", Domain: privilege.DomainAccount, Area: "analytics", Level: privilege.Execute},
		{PrincipalID: "user-1", Domain: privilege.DomainProject, Context: "proj-a", Area: "campaigns", Level: privilege.Write},
		{PrincipalID: "user-1", Domain: privilege.DomainProject, Context: "proj-b", Area: "audience", Level: privilege.Read},
	})
	if err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	return s
}

func TestService_HasAccountPrivilege(t *testing.T) {
	svc := NewService(seededStore(t))
	ctx := context.Background()

	tests := []struct {
		name string
		area string
		min  privilege.AccessLevel
		want bool
	}{
		{"delete satisfies write", "user_management", privilege.Write, true},
		{"execute below delete", "analytics", privilege.Delete, false},
		{"unknown area", "billing", privilege.Read, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.HasAccountPrivilege(ctx, "user-1", tc.area, tc.min)
			if err != nil {
				t.Fatalf("HasAccountPrivilege() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("HasAccountPrivilege(%s, %s) = %v, want %v", tc.area, tc.min, got, tc.want)
			}
		})
	}
}

func TestService_HasProjectPrivilege(t *testing.T) {
	svc := NewService(seededStore(t))
	ctx := context.Background()

	tests := []struct {
		name      string
		contextID string
		area      string
		min       privilege.AccessLevel
		want      bool
	}{
		{"write below execute", "proj-a", "campaigns", privilege.Execute, false},
		{"read below write", "proj-b", "audience", privilege.Write, false},
		{"wrong context", "proj-a", "audience", privilege.Read, false},
		{"write satisfies read", "proj-a", "campaigns", privilege.Read, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.HasProjectPrivilege(ctx, "user-1", tc.contextID, tc.area, tc.min)
			if err != nil {
				t.Fatalf("HasProjectPrivilege() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("HasProjectPrivilege(%s, %s, %s) = %v, want %v",
					tc.contextID, tc.area, tc.min, got, tc.want)
			}
		})
	}
}

func TestService_UnknownPrincipal(t *testing.T) {
	svc := NewService(seededStore(t))
	got, err := svc.HasAccountPrivilege(context.Background(), "nobody", "analytics", privilege.Read)
	if err != nil {
		t.Fatalf("no privileges is a normal false, got error %v", err)
	}
	if got {
		t.Error("unknown principal must not be granted")
	}
}

func TestService_StoreErrorWrapped(t *testing.T) {
	boom := stderrors.New("connection reset")
	src := store.RecordSourceFunc(func(context.Context, string) ([]privilege.Record, error) {
		return nil, boom
	})
	svc := NewService(src)

	_, err := svc.HasAccountPrivilege(context.Background(), "user-1", "analytics", privilege.Read)
	if !errors.HasCode(err, errors.ErrCodeStoreError) {
		t.Errorf("error = %v, want STORE_ERROR", err)
	}
	if !stderrors.Is(err, boom) {
		t.Error("cause should be preserved through the wrap")
	}
}

func TestService_DefectiveRecordPropagates(t *testing.T) {
	src := store.RecordSourceFunc(func(_ context.Context, principalID string) ([]privilege.Record, error) {
		// A project row with no context, as a broken upstream store
		// might return it. MemoryStore would refuse to hold this.
		return []privilege.Record{{
			PrincipalID: principalID,
			Domain:      privilege.DomainProject,
			Area:        "campaigns",
			Level:       privilege.Write,
		}}, nil
	})

	var buf bytes.Buffer
	svc := NewService(src, WithLogger(logger.NewWriter(&buf, "test")))

	_, err := svc.HasProjectPrivilege(context.Background(), "user-1", "proj-a", "campaigns", privilege.Read)
	if !errors.IsMissingContext(err) {
		t.Errorf("error = %v, want MISSING_CONTEXT", err)
	}
	if !strings.Contains(buf.String(), "record failed to encode") {
		t.Errorf("expected encode failure log, got %s", buf.String())
	}
}

func TestService_CollectionFor(t *testing.T) {
	svc := NewService(seededStore(t))
	tokens, err := svc.CollectionFor(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("CollectionFor() error = %v", err)
	}
	if len(tokens) != 4 {
		t.Fatalf("len(tokens) = %d, want 4", len(tokens))
	}
	want := privilege.Token("account:user_management:delete")
	if tokens[0] != want {
		t.Errorf("tokens[0] = %q, want %q", tokens[0], want)
	}
}

func TestStaticChecker(t *testing.T) {
	checker := NewStaticChecker(map[string][]privilege.Token{
		"admin": {"account:user_management:delete", "project:proj-a:campaigns:write"},
	})
	ctx := context.Background()

	got, err := checker.HasAccountPrivilege(ctx, "admin", "user_management", privilege.Execute)
	if err != nil || !got {
		t.Errorf("account check = %v, %v, want true", got, err)
	}
	got, err = checker.HasProjectPrivilege(ctx, "admin", "proj-a", "campaigns", privilege.Delete)
	if err != nil || got {
		t.Errorf("project check = %v, %v, want false", got, err)
	}
	got, err = checker.HasAccountPrivilege(ctx, "ghost", "user_management", privilege.Read)
	if err != nil || got {
		t.Errorf("unknown principal = %v, %v, want false", got, err)
	}
}
