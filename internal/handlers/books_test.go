package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"bookshelf/internal/models"
	"bookshelf/internal/repository"
	"bookshelf/internal/service"
)

// fullService builds a Service whose login succeeds as user 7 ("alice").
func fullService(books *mockBooks) *service.Service {
	return &service.Service{
		Authorization: &mockAuth{authUser: &models.User{ID: 7, Username: "alice"}},
		Books:         books,
		Users:         &mockUsers{},
	}
}

func TestBookMutations_RequireLoginFirst(t *testing.T) {
	books := &mockBooks{getBook: &models.Book{ID: 5, OwnerID: 2}}
	r := newTestRouter(fullService(books))

	paths := []string{
		"/books/add",
		"/books/5/edit",
		"/books/5/delete",
		"/books/5/status",
	}
	for _, path := range paths {
		w := postForm(r, path, url.Values{}, nil)
		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
			t.Fatalf("%s: expected bounce to /login, got %d -> %q", path, w.Code, w.Header().Get("Location"))
		}
	}
	if books.deleteCalls != 0 || books.updateCalls != 0 || books.statusCalls != 0 || books.addCalls != 0 {
		t.Fatalf("anonymous requests must not reach the service: %+v", books)
	}
}

func TestDeleteBook_NotOwnerIsSoftDenied(t *testing.T) {
	// Book owned by user 2; session user is 7.
	books := &mockBooks{getBook: &models.Book{ID: 5, Title: "Dune", OwnerID: 2}}
	r := newTestRouter(fullService(books))
	cookies := signIn(t, r)

	w := postForm(r, "/books/5/delete", url.Values{}, cookies)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected soft redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/books/5/view" {
		t.Fatalf("expected redirect to read-only view, got %q", loc)
	}
	if books.deleteCalls != 0 {
		t.Fatalf("denied request must not delete anything")
	}

	// The refreshed cookie carries both the session and the denial notice.
	view := getPage(r, "/books/5/view", w.Result().Cookies())
	if !strings.Contains(view.Body.String(), noticeNotYourBook) {
		t.Fatalf("expected denial notice on the view:\n%s", view.Body.String())
	}
}

func TestDeleteBook_OwnerSucceeds(t *testing.T) {
	books := &mockBooks{getBook: &models.Book{ID: 5, Title: "Dune", OwnerID: 7}}
	r := newTestRouter(fullService(books))
	cookies := signIn(t, r)

	w := postForm(r, "/books/5/delete", url.Values{}, cookies)

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/my-books" {
		t.Fatalf("expected redirect to /my-books, got %d -> %q", w.Code, w.Header().Get("Location"))
	}
	if books.deleteCalls != 1 || books.lastDelete != 5 {
		t.Fatalf("expected one delete of book 5, got %+v", books)
	}
}

func TestAddBook_MissingFieldsReRenderForm(t *testing.T) {
	books := &mockBooks{}
	r := newTestRouter(fullService(books))
	cookies := signIn(t, r)

	w := postForm(r, "/books/add", url.Values{"author": {"Herbert"}}, cookies)

	if w.Code != http.StatusOK {
		t.Fatalf("expected re-render with 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), noticeMissingFields) {
		t.Fatalf("missing validation notice:\n%s", w.Body.String())
	}
	if books.addCalls != 0 {
		t.Fatalf("invalid form must not reach the service")
	}
}

func TestAddBook_YearHandling(t *testing.T) {
	t.Run("empty year becomes nil", func(t *testing.T) {
		books := &mockBooks{addID: 9}
		r := newTestRouter(fullService(books))
		cookies := signIn(t, r)

		w := postForm(r, "/books/add", url.Values{
			"title":  {"Dune"},
			"author": {"Herbert"},
			"year":   {""},
		}, cookies)

		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/books/9/view" {
			t.Fatalf("expected redirect to new book view, got %d -> %q", w.Code, w.Header().Get("Location"))
		}
		if books.addCalls != 1 {
			t.Fatalf("expected one Add call")
		}
		if books.lastAddIn.Year != nil {
			t.Fatalf("expected nil year, got %v", *books.lastAddIn.Year)
		}
		if books.lastAddOwn != 7 {
			t.Fatalf("expected owner from session (7), got %d", books.lastAddOwn)
		}
	})

	t.Run("numeric year is parsed", func(t *testing.T) {
		books := &mockBooks{addID: 9}
		r := newTestRouter(fullService(books))
		cookies := signIn(t, r)

		postForm(r, "/books/add", url.Values{
			"title":  {"Dune"},
			"author": {"Herbert"},
			"year":   {"1965"},
		}, cookies)

		if books.lastAddIn.Year == nil || *books.lastAddIn.Year != 1965 {
			t.Fatalf("expected year 1965, got %v", books.lastAddIn.Year)
		}
	})

	t.Run("non-numeric year re-renders", func(t *testing.T) {
		books := &mockBooks{}
		r := newTestRouter(fullService(books))
		cookies := signIn(t, r)

		w := postForm(r, "/books/add", url.Values{
			"title":  {"Dune"},
			"author": {"Herbert"},
			"year":   {"MCMLXV"},
		}, cookies)

		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), noticeInvalidYear) {
			t.Fatalf("expected year notice, got %d:\n%s", w.Code, w.Body.String())
		}
		if books.addCalls != 0 {
			t.Fatalf("invalid year must not reach the service")
		}
	})
}

func TestEditBook_OwnerUpdatesAndRedirects(t *testing.T) {
	books := &mockBooks{getBook: &models.Book{ID: 5, Title: "Dune", OwnerID: 7}}
	r := newTestRouter(fullService(books))
	cookies := signIn(t, r)

	w := postForm(r, "/books/5/edit", url.Values{
		"title":  {"Dune Messiah"},
		"author": {"Herbert"},
	}, cookies)

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/books/5/view" {
		t.Fatalf("expected redirect to view, got %d -> %q", w.Code, w.Header().Get("Location"))
	}
	if books.updateCalls != 1 || books.lastUpdIn.Title != "Dune Messiah" {
		t.Fatalf("unexpected update: %+v", books)
	}
}

func TestUpdateStatus_OwnerRedirectsToView(t *testing.T) {
	books := &mockBooks{getBook: &models.Book{ID: 5, OwnerID: 7}}
	r := newTestRouter(fullService(books))
	cookies := signIn(t, r)

	w := postForm(r, "/books/5/status", url.Values{"status": {models.StatusReading}}, cookies)

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/books/5/view" {
		t.Fatalf("expected redirect to view, got %d -> %q", w.Code, w.Header().Get("Location"))
	}
	if books.statusCalls != 1 || books.lastStatus != models.StatusReading {
		t.Fatalf("unexpected status call: %+v", books)
	}
}

func TestViewBook_UnknownIDRenders404(t *testing.T) {
	books := &mockBooks{getErr: repository.ErrNotFound}
	r := newTestRouter(fullService(books))

	w := getPage(r, "/books/99/view", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "404") {
		t.Fatalf("error view should carry the numeric code:\n%s", w.Body.String())
	}
}

func TestViewBook_NonNumericIDRenders404(t *testing.T) {
	books := &mockBooks{}
	r := newTestRouter(fullService(books))

	w := getPage(r, "/books/not-a-number/view", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestViewBook_HidesControlsFromNonOwner(t *testing.T) {
	books := &mockBooks{getBook: &models.Book{ID: 5, Title: "Dune", Author: "Herbert", Status: models.StatusReading, OwnerID: 2}}
	r := newTestRouter(fullService(books))

	// Anonymous visitor: read-only, no mutation controls.
	w := getPage(r, "/books/5/view", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("view status=%d", w.Code)
	}
	if strings.Contains(w.Body.String(), "/books/5/delete") {
		t.Fatalf("read-only view must not offer delete:\n%s", w.Body.String())
	}
}

func TestMyBooks_ListsOnlyOwnBooks(t *testing.T) {
	books := &mockBooks{listOwned: []models.Book{{ID: 1, Title: "Dune", Author: "Herbert", OwnerID: 7}}}
	r := newTestRouter(fullService(books))
	cookies := signIn(t, r)

	w := getPage(r, "/my-books", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("my-books status=%d", w.Code)
	}
	if books.lastOwnerQ != 7 {
		t.Fatalf("expected listing filtered to session user 7, got %d", books.lastOwnerQ)
	}
	if !strings.Contains(w.Body.String(), "Dune") {
		t.Fatalf("expected owned book in the listing")
	}
}
