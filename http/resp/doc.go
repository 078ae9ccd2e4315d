/*
Package resp provides a high-level API for responding to HTTP requests
with responses configured once, application-wide.

resp provides three main ways of responding to an HTTP request:
  - rendering HTML templates inside the application layout
  - rendering JSON data
  - redirecting
*/
package resp
