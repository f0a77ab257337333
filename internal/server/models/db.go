// Package models holds the rows the sync server persists: sharing groups,
// their commit locks, staged uploads and the file index.
package models
