package types

// Viewer 计算 is_favorited / is_in_shopping_cart / is_subscribed 时的观察者。
// ID 为 0 表示匿名访客，所有派生标记均为 false。
type Viewer struct {
	ID uint64
}

var Anonymous = Viewer{}

func ViewerOf(userID uint64) Viewer {
	return Viewer{ID: userID}
}

func (v Viewer) IsAnonymous() bool {
	return v.ID == 0
}
