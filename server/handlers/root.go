package handlers

import "net/http"

// HandleRoot redirects the site root to the static web UI. The redirect is a
// 307 so clients repeat the original method.
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}
