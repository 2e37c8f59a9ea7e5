package auth

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"github.com/eonerhime/easy-shoppers-hub/models"
)

func TestSignupErrorMessages(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	cases := []struct {
		name string
		req  SignupRequest
		want string
	}{
		{"short password", SignupRequest{Email: "a@b.com", Password: "short", Name: "A"}, "Password must be at least 8 characters long."},
		{"bad email", SignupRequest{Email: "not-an-email", Password: "longenough", Name: "A"}, "Please enter a valid email address."},
		{"missing name", SignupRequest{Email: "a@b.com", Password: "longenough"}, "Invalid input. Please check your details."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if got := signupErrorMessage(err); got != tc.want {
				t.Fatalf("message = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIssueJWTRoundTrip(t *testing.T) {
	user := models.User{ID: "u1", Email: "a@b.com", Name: "Ada"}
	session := models.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}

	signed, err := IssueJWT("sekret", user, session)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	token, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) {
		return []byte("sekret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"] != "u1" || claims["session_id"] != "s1" {
		t.Fatalf("claims = %v", claims)
	}
}
