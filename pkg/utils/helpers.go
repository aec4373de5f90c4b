// Package utils 提供少量通用辅助函数
package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// CalculateMD5 计算字节切片的MD5哈希值
func CalculateMD5(data []byte) string {
	hasher := md5.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}
