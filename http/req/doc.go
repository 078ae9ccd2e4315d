/*
Package req parses payloads encoded in query parameters into a pointer to a struct.

That struct ought to leverage "schema" struct tags for matching keys in the payload to its fields
and "validate" struct tags for checking the payload's data meets requirements.
Decoding and validation issues are translated to connect sentinel errors,
so handlers see a consistent interface no matter what went wrong.
*/
package req
