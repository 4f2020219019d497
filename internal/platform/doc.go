package platform

// Package platform contains OS integration and external collaborator glue:
// per-user data/config paths, note file access, and launching the external
// editor. The core never deletes files; it only reads them and creates empty
// ones on request.
