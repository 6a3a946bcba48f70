package navigation

import "net/http"

// Navigator sends the client to target. The request being answered is
// passed in explicitly so implementations never depend on ambient state.
type Navigator interface {
	Navigate(w http.ResponseWriter, r *http.Request, target string)
}

// RedirectNavigator answers with 303 See Other, so a POSTed version switch
// is followed by a GET of the new page.
type RedirectNavigator struct{}

func (RedirectNavigator) Navigate(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(w http.ResponseWriter, r *http.Request, target string)

func (f NavigatorFunc) Navigate(w http.ResponseWriter, r *http.Request, target string) {
	f(w, r, target)
}
