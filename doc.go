// Package main provides the entry point for the portfolio backend service.
// It initializes and runs a web server using the Fiber framework that serves
// portfolio content, site settings, visitor feedback and visit analytics
// through a REST API. Settings persist either to a relational database via
// gorm or to flat files, selected at startup by configuration.
package main
