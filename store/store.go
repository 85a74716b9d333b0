// Package store provides persisted-choice backends for langswap.
package store

import "github.com/ZaguanLabs/langswap"

// Store is an alias to the main package interface.
type Store = langswap.Store
