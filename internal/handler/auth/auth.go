// File: internal/handler/auth/auth.go
package auth

import (
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/service"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/store"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	getUserByEmail   = store.GetUserByEmail
	getUserByID      = store.GetUserByID
	createUser       = store.CreateUser
	adminExists      = store.AdminExists
)
