package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成全局唯一 ID，用于图片文件名
func GenID() int64 {
	return node.Generate().Int64()
}
