package identity

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParsePassword_Length(t *testing.T) {
	t.Parallel()

	policy := DefaultPasswordPolicy()

	cases := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "exactly 8", in: "12345678"},
		{name: "longer", in: "longenough1"},
		{name: "seven chars", in: "1234567", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "multibyte runes count as chars", in: "pässwörd"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParsePassword(tc.in, policy)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidPassword) {
					t.Fatalf("ParsePassword(%q) err=%v, want ErrInvalidPassword", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePassword(%q): %v", tc.in, err)
			}
		})
	}
}

func TestParsePassword_StrengthPolicy(t *testing.T) {
	t.Parallel()

	policy := PasswordPolicy{
		MinLength: 8,
		MinScore:  3,
		Strength:  ZxcvbnStrength,
	}

	if _, err := ParsePassword("aaaaaaaa", policy); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected weak password to be rejected, got %v", err)
	}
	if _, err := ParsePassword("9K#vQ2m!xL7pR4wz", policy); err != nil {
		t.Fatalf("expected strong password to pass, got %v", err)
	}
}

func TestParsePassword_EstimatorFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	failing := PasswordPolicy{
		MinLength: 8,
		MinScore:  1,
		Strength: func(string) (int, error) {
			return 0, fmt.Errorf("scorer unavailable")
		},
	}
	if _, err := ParsePassword("longenough1", failing); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("estimator error must read as not strong enough, got %v", err)
	}

	panicking := PasswordPolicy{
		MinLength: 8,
		MinScore:  1,
		Strength: func(string) (int, error) {
			panic("scorer blew up")
		},
	}
	if _, err := ParsePassword("longenough1", panicking); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("estimator panic must read as not strong enough, got %v", err)
	}
}

func TestPassword_Redaction(t *testing.T) {
	t.Parallel()

	p, err := ParsePassword("super-secret-1", DefaultPasswordPolicy())
	if err != nil {
		t.Fatalf("ParsePassword: %v", err)
	}
	if s := fmt.Sprintf("%v %s", p, p); strings.Contains(s, "super-secret-1") {
		t.Fatalf("password leaked through formatting: %q", s)
	}
}

func TestPassword_Equal(t *testing.T) {
	t.Parallel()

	policy := DefaultPasswordPolicy()
	a, _ := ParsePassword("123asdf987234", policy)
	b, _ := ParsePassword("123asdf987234", policy)
	c, _ := ParsePassword("123asdf98723x", policy)

	if !a.Equal(b) {
		t.Fatalf("expected equal passwords to match")
	}
	if a.Equal(c) {
		t.Fatalf("expected different passwords to mismatch")
	}
	if (Password{}).Equal(Password{}) {
		t.Fatalf("zero passwords must never match")
	}
}
