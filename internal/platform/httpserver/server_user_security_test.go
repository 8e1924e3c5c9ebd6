package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestListUsersIsAdminGated(t *testing.T) {
	server := newTestServer()
	userToken := registerAndLogin(t, server, "ada", "ada@example.com", "")
	adminToken := registerAndLogin(t, server, "root", "root@example.com", "admin")

	denied := doJSON(t, server, http.MethodGet, "/api/user", userToken, nil)
	if denied.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d body=%s", denied.Code, denied.Body.String())
	}

	anonymous := doJSON(t, server, http.MethodGet, "/api/user", "", nil)
	if anonymous.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous, got %d body=%s", anonymous.Code, anonymous.Body.String())
	}

	allowed := doJSON(t, server, http.MethodGet, "/api/user", adminToken, nil)
	if allowed.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d body=%s", allowed.Code, allowed.Body.String())
	}
	var listed []map[string]any
	if err := json.Unmarshal(allowed.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(listed))
	}
	for _, item := range listed {
		if _, leaked := item["password"]; leaked {
			t.Fatalf("password leaked in listing: %v", item)
		}
	}
}

func TestGetProfileRequiresCredential(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodGet, "/api/user/me", "", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}

	bearer := registerAndLogin(t, server, "ada", "ada@example.com", "")
	rr = doJSON(t, server, http.MethodGet, "/api/user/me", bearer, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	if body["username"] != "ada" || body["email"] != "ada@example.com" || body["role"] != "user" {
		t.Fatalf("unexpected profile %v", body)
	}
}

func TestUpdateProfilePartialPatch(t *testing.T) {
	server := newTestServer()
	bearer := registerAndLogin(t, server, "ada", "ada@example.com", "")
	registerAndLogin(t, server, "grace", "grace@example.com", "")

	empty := doJSON(t, server, http.MethodPatch, "/api/user/me", bearer, map[string]any{})
	if empty.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty patch, got %d body=%s", empty.Code, empty.Body.String())
	}
	if msg := decodeBody(t, empty)["message"]; msg != "No updates provided" {
		t.Fatalf("unexpected message %v", msg)
	}

	// Empty strings count as absent, not as clearing the field.
	blank := doJSON(t, server, http.MethodPatch, "/api/user/me", bearer, map[string]any{
		"username": "",
		"email":    "",
	})
	if blank.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank patch, got %d body=%s", blank.Code, blank.Body.String())
	}

	renamed := doJSON(t, server, http.MethodPatch, "/api/user/me", bearer, map[string]any{
		"username": "ada.l",
	})
	if renamed.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", renamed.Code, renamed.Body.String())
	}
	body := decodeBody(t, renamed)
	if body["username"] != "ada.l" || body["email"] != "ada@example.com" {
		t.Fatalf("unexpected patched profile %v", body)
	}

	collision := doJSON(t, server, http.MethodPatch, "/api/user/me", bearer, map[string]any{
		"email": "grace@example.com",
	})
	if collision.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on email collision, got %d body=%s", collision.Code, collision.Body.String())
	}
}

func TestDeleteSelfIsTerminal(t *testing.T) {
	server := newTestServer()
	bearer := registerAndLogin(t, server, "ada", "ada@example.com", "")

	first := doJSON(t, server, http.MethodDelete, "/api/user/me", bearer, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", first.Code, first.Body.String())
	}
	if msg := decodeBody(t, first)["message"]; msg != "User soft deleted successfully" {
		t.Fatalf("unexpected message %v", msg)
	}

	// The credential still verifies, but the profile is gone.
	profile := doJSON(t, server, http.MethodGet, "/api/user/me", bearer, nil)
	if profile.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d body=%s", profile.Code, profile.Body.String())
	}

	second := doJSON(t, server, http.MethodDelete, "/api/user/me", bearer, nil)
	if second.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d body=%s", second.Code, second.Body.String())
	}
	if msg := decodeBody(t, second)["message"]; msg != "User not found or already deleted" {
		t.Fatalf("unexpected message %v", msg)
	}
}

func TestDeleteOtherUserNeedsAdmin(t *testing.T) {
	server := newTestServer()
	victimToken := registerAndLogin(t, server, "victim", "victim@example.com", "")
	otherToken := registerAndLogin(t, server, "other", "other@example.com", "")
	adminToken := registerAndLogin(t, server, "root", "root@example.com", "admin")

	me := doJSON(t, server, http.MethodGet, "/api/user/me", victimToken, nil)
	victimID, _ := decodeBody(t, me)["id"].(string)

	denied := doJSON(t, server, http.MethodDelete, "/api/user/"+victimID, otherToken, nil)
	if denied.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d body=%s", denied.Code, denied.Body.String())
	}

	granted := doJSON(t, server, http.MethodDelete, "/api/user/"+victimID, adminToken, nil)
	if granted.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d body=%s", granted.Code, granted.Body.String())
	}
}

// Soft-deleted accounts still hold their username and email, so the same
// identifiers cannot be registered again.
func TestDeletedUserStillBlocksReRegistration(t *testing.T) {
	server := newTestServer()
	bearer := registerAndLogin(t, server, "ada", "ada@example.com", "")

	deleted := doJSON(t, server, http.MethodDelete, "/api/user/me", bearer, nil)
	if deleted.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", deleted.Code, deleted.Body.String())
	}

	rr := doJSON(t, server, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "ada",
		"email":    "ada@example.com",
		"password": "hunter2!",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	if msg := decodeBody(t, rr)["message"]; msg != "User already exists" {
		t.Fatalf("unexpected message %v", msg)
	}
}

func TestDeletedUsersDropFromAdminListing(t *testing.T) {
	server := newTestServer()
	victimToken := registerAndLogin(t, server, "victim", "victim@example.com", "")
	adminToken := registerAndLogin(t, server, "root", "root@example.com", "admin")

	deleted := doJSON(t, server, http.MethodDelete, "/api/user/me", victimToken, nil)
	if deleted.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", deleted.Code, deleted.Body.String())
	}

	listed := doJSON(t, server, http.MethodGet, "/api/user", adminToken, nil)
	var accounts []map[string]any
	if err := json.Unmarshal(listed.Body.Bytes(), &accounts); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(accounts) != 1 || accounts[0]["username"] != "root" {
		t.Fatalf("expected only the admin to remain, got %v", accounts)
	}
}
