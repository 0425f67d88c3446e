// Package internal contains the core infrastructure for the taralli widget
// library. This includes SDL initialization, theming, icon rasterization, and
// rendering utilities. Types and functions in this package are not part of the
// public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
