// Package secrets generates the random values a scaffolded panel needs
// before it will boot and writes them into the project's env file.
//
// # Generation
//
// Every secret is backed by 32 bytes read from the operating system
// CSPRNG and stored as its 64-character lowercase hex encoding. Values
// are generated independently; two entries never share bytes.
//
// # Provisioning
//
// A Provisioner fills a fixed set of entries in an envfile.Document.
// It only ever rewrites the value of an entry that already exists, so a
// file missing one of the expected keys fails before anything is
// generated. Provision mutates the document in memory; callers persist
// the result with Document.Save, which replaces the file atomically or
// not at all.
//
// Secret values are returned to callers through the document alone.
// Nothing in this package logs or prints them.
package secrets
