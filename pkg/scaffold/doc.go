// Package scaffold renders a new admin panel project from embedded
// templates.
//
// # Manifest
//
// The scaffold is described by a manifest of files, each rendered from
// a template under templates/ with the recipe as data. Files write in
// manifest order so a failed scaffold is easy to diagnose. Postgres
// recipes additionally get bootstrap SQL under db/migrations for
// `panelctl db migrate`.
//
// # Generated app
//
// The output is an Express application: EJS views, Prisma schema,
// cookie-based JWT sessions and a CSRF double-submit guard. The two
// secret entries in its .env are left empty; `panelctl secrets
// provision` fills them.
package scaffold
