/*
Package signin connects a Google account to the backend.

The page at / renders the "Connect with Google" control.
Activating it sends the browser to Google's consent screen;
Google redirects back with an authorization code,
which is submitted once to the backend exchange URL.
Every step is reported in the page's status message.

A Flow holds the state shared across requests; a Handler serves the routes.
*/
package signin

//go:generate mockgen -destination=signintest/exchanger.go -package=signintest . Exchanger
