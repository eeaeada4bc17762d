// Package utils provides common utility functions for the portal.
// It includes helper functions for loose type conversion used when handling
// opaque history metadata and query parameters.
package utils
