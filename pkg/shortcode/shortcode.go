// Package shortcode 生成食谱短链编码。
//
// 编码完全随机，不携带食谱 ID 或创建顺序信息；唯一性由存储层的唯一索引保证。
package shortcode

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	Length   = 5
)

// Generator 短链编码生成器，测试里可替换为固定序列
type Generator func() (string, error)

// Random 默认生成器：5 位字母数字
func Random() (string, error) {
	return gonanoid.Generate(Alphabet, Length)
}

// Valid 校验编码格式
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
