package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID returns a new time ordered id.
func GenID() uint64 {
	return uint64(node.Generate().Int64())
}
