package cryptox

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/dmitrijs2005/passvault/internal/common"
)

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher("test-key")
	if err != nil {
		t.Fatalf("NewCipher error: %v", err)
	}

	for _, plaintext := range []string{"", "a", "Sup3r$ecret!!", "пароль"} {
		token := c.EncryptString(plaintext)

		if plaintext != "" && token == plaintext {
			t.Fatalf("ciphertext equals plaintext for %q", plaintext)
		}

		got, err := c.DecryptString(token)
		if err != nil {
			t.Fatalf("DecryptString error: %v", err)
		}
		if got != plaintext {
			t.Fatalf("round trip mismatch: got %q want %q", got, plaintext)
		}
	}
}

func TestCipher_NonDeterministic(t *testing.T) {
	c, err := NewCipher("test-key")
	if err != nil {
		t.Fatalf("NewCipher error: %v", err)
	}

	// fresh nonce per call: same plaintext must not repeat
	if c.EncryptString("secret") == c.EncryptString("secret") {
		t.Fatalf("expected different tokens for repeated encryption")
	}
}

func TestCipher_WrongKey(t *testing.T) {
	c1, _ := NewCipher("key-one")
	c2, _ := NewCipher("key-two")

	token := c1.EncryptString("secret")

	_, err := c2.DecryptString(token)
	if !errors.Is(err, common.ErrorDecryptionFailed) {
		t.Fatalf("want ErrorDecryptionFailed, got %v", err)
	}
}

func TestCipher_MalformedToken(t *testing.T) {
	c, _ := NewCipher("key")

	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "%%%"},
		{name: "too short", token: base64.StdEncoding.EncodeToString([]byte("abc"))},
		{name: "empty", token: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.DecryptString(tc.token); !errors.Is(err, common.ErrorDecryptionFailed) {
				t.Fatalf("want ErrorDecryptionFailed, got %v", err)
			}
		})
	}
}

func TestCipher_TamperedCiphertext(t *testing.T) {
	c, _ := NewCipher("key")

	token := c.EncryptString("secret")
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	raw[len(raw)-1] ^= 0xff

	_, err = c.DecryptString(base64.StdEncoding.EncodeToString(raw))
	if !errors.Is(err, common.ErrorDecryptionFailed) {
		t.Fatalf("want ErrorDecryptionFailed, got %v", err)
	}
}
