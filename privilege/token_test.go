package privilege

import (
	stderrors "errors"
	"testing"

	"github.com/skillsenselab/grantkit/errors"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   Token
	}{
		{
			"account grant",
			Record{Domain: DomainAccount, Area: "user_management", Level: Delete},
			"account:user_management:delete",
		},
		{
			"project grant",
			Record{Domain: DomainProject, Context: "proj-a", Area: "campaigns", Level: Write},
			"project:proj-a:campaigns:write",
		},
		{
			"account grant ignores context",
			Record{Domain: DomainAccount, Area: "analytics", Level: Execute, Context: "proj-a"},
			"account:analytics:execute",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.record)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("Encode() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		code   errors.ErrorCode
	}{
		{
			"project without context",
			Record{Domain: DomainProject, Area: "campaigns", Level: Write},
			errors.ErrCodeMissingContext,
		},
		{
			"unknown domain",
			Record{Domain: "org", Area: "campaigns", Level: Write},
			errors.ErrCodeUnknownDomain,
		},
		{
			"unknown level",
			Record{Domain: DomainAccount, Area: "campaigns", Level: "owner"},
			errors.ErrCodeUnknownLevel,
		},
		{
			"empty area",
			Record{Domain: DomainAccount, Level: Read},
			errors.ErrCodeMissingField,
		},
		{
			"delimiter in area",
			Record{Domain: DomainAccount, Area: "a:b", Level: Read},
			errors.ErrCodeInvalidArea,
		},
		{
			"delimiter in context",
			Record{Domain: DomainProject, Context: "p:1", Area: "campaigns", Level: Read},
			errors.ErrCodeInvalidArea,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(tc.record)
			if !errors.HasCode(err, tc.code) {
				t.Errorf("Encode() error = %v, want code %s", err, tc.code)
			}
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	records := []Record{
		{Domain: DomainAccount, Area: "user_management", Level: Delete},
		{Domain: DomainAccount, Area: "analytics", Level: Execute},
		{Domain: DomainProject, Context: "proj-a", Area: "campaigns", Level: Write},
		{Domain: DomainProject, Context: "proj-b", Area: "audience", Level: Read},
	}
	for _, r := range records {
		tok, err := Encode(r)
		if err != nil {
			t.Fatalf("Encode(%+v) error = %v", r, err)
		}
		got, err := Decode(tok, r.Domain)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", tok, err)
		}
		if got != r {
			t.Errorf("round-trip: Decode(Encode(%+v)) = %+v", r, got)
		}
	}
}

func TestDecodeAccount_Errors(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		code  errors.ErrorCode
	}{
		{"too few fields", "account:analytics", errors.ErrCodeMalformedToken},
		{"too many fields", "account:analytics:read:extra", errors.ErrCodeMalformedToken},
		{"empty area", "account::read", errors.ErrCodeMalformedToken},
		{"unknown level", "account:analytics:admin", errors.ErrCodeUnknownLevel},
		{"unknown domain tag", "org:analytics:read", errors.ErrCodeUnknownDomain},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAccount(tc.token)
			if !errors.HasCode(err, tc.code) {
				t.Errorf("DecodeAccount(%q) error = %v, want code %s", tc.token, err, tc.code)
			}
			if !errors.IsMalformedToken(err) {
				t.Errorf("all decode failures are malformed-token by policy, got %v", err)
			}
		})
	}
}

func TestDecodeProject_Errors(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		code  errors.ErrorCode
	}{
		{"account arity", "project:campaigns:read", errors.ErrCodeMalformedToken},
		{"empty context", "project::campaigns:read", errors.ErrCodeMalformedToken},
		{"empty area", "project:proj-a::read", errors.ErrCodeMalformedToken},
		{"unknown level", "project:proj-a:campaigns:all", errors.ErrCodeUnknownLevel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeProject(tc.token)
			if !errors.HasCode(err, tc.code) {
				t.Errorf("DecodeProject(%q) error = %v, want code %s", tc.token, err, tc.code)
			}
		})
	}
}

func TestDecode_WrongDomain(t *testing.T) {
	// A token of the other domain is a non-candidate, not a defect.
	if _, err := DecodeAccount("project:proj-a:campaigns:write"); !stderrors.Is(err, ErrWrongDomain) {
		t.Errorf("DecodeAccount(project token) error = %v, want ErrWrongDomain", err)
	}
	if _, err := DecodeProject("account:analytics:read"); !stderrors.Is(err, ErrWrongDomain) {
		t.Errorf("DecodeProject(account token) error = %v, want ErrWrongDomain", err)
	}
	// Even with broken arity, a foreign-domain token stays a non-candidate.
	if _, err := DecodeAccount("project:too:many:fields:here"); !stderrors.Is(err, ErrWrongDomain) {
		t.Errorf("DecodeAccount(broken project token) error = %v, want ErrWrongDomain", err)
	}
}

func TestEncodeRecords(t *testing.T) {
	records := []Record{
		{Domain: DomainAccount, Area: "analytics", Level: Read},
		{Domain: DomainProject, Context: "p1", Area: "campaigns", Level: Write},
	}
	tokens, err := EncodeRecords(records)
	if err != nil {
		t.Fatalf("EncodeRecords() error = %v", err)
	}
	want := []Token{"account:analytics:read", "project:p1:campaigns:write"}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("tokens[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}

	// One defective record aborts the whole collection.
	records = append(records, Record{Domain: DomainProject, Area: "audience", Level: Read})
	if _, err := EncodeRecords(records); !errors.IsMissingContext(err) {
		t.Errorf("EncodeRecords with defective record error = %v, want MISSING_CONTEXT", err)
	}
}
