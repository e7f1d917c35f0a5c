// Package platform provides the filesystem alias primitives used to expose
// an external asset tree inside a generated project. Aliases are symbolic
// links; on Windows they require developer mode or elevated privileges.
package platform
