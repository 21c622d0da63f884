// Package iperfer provides a programmatic API for running iPerfer
// measurement sessions.
//
// RunServer and RunClient own connection setup and teardown;
// ServerSession and ClientSession drive the protocol over any
// established reliable byte stream.
package iperfer
