package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成实体主键，用户与食谱共用同一节点
func GenID() uint64 {
	return uint64(node.Generate().Int64())
}
