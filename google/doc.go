/*
Package google builds the Google OAuth2 authorization-code client
and interprets what Google sends back to the callback URL.

A CodeClient is constructed once from a validated ClientConfig.
RequestCode produces the consent screen URL the browser is redirected to;
Google answers on the redirect URL with either a code or an error,
which ParseCallback turns into an Outcome.

The client never exchanges the code itself: that is the backend's job.
*/
package google
