/*
Package exchange hands an authorization code to the backend that trades it for tokens.

The backend contract is a single JSON POST:

	POST <backend exchange url>
	{"code": "<authorization code>"}

A 2xx answer may name the connected account in "userEmail".
Any other answer may explain itself in "message" or "error".

Codes are single use, so a SeenCache remembers which ones were already submitted.
*/
package exchange
