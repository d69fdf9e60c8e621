package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "hunter2") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "hunter3") {
		t.Error("wrong password should not verify")
	}
	if CheckPassword("not-a-hash", "hunter2") {
		t.Error("malformed hash should not verify")
	}
}
