package service

import "github.com/Abbas-Hussain-byte/primetrade-assignment/internal/model"

// CanViewTask 擁有者或管理員可讀取
func CanViewTask(u model.User, t model.Task) bool {
	return t.OwnerID == u.ID || u.IsAdmin()
}

// CanUpdateTask 只有擁有者可更新，管理員也不行
func CanUpdateTask(u model.User, t model.Task) bool {
	return t.OwnerID == u.ID
}

// CanDeleteTask 擁有者或管理員可刪除
func CanDeleteTask(u model.User, t model.Task) bool {
	return t.OwnerID == u.ID || u.IsAdmin()
}
