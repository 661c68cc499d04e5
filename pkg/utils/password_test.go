package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("kitchen123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "kitchen123" {
		t.Error("hash should not equal the plain password")
	}

	if !CheckPasswordHash("kitchen123", hash) {
		t.Error("correct password should verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password should not verify")
	}
}
