// Package kinolist saves a user's movie lists from kinopoisk.ru as local HTML
// pages and extracts them into tabular records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package kinolist
