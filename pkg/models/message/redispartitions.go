package message

import (
	"fmt"
)

const topicNumber = 5

type RedisPartition int

func (r RedisPartition) ListKey() string {
	return fmt.Sprintf("Hint-Partition-%d", r)
}

func (r RedisPartition) OwnerKey() string {
	return fmt.Sprintf("Hint-Partition %d Owner", r)
}

func (r RedisPartition) LockName() string {
	return fmt.Sprintf("Hint-Partition %d Lock", r)
}

var RedisPartitions []RedisPartition

func init() {
	for i := range topicNumber {
		RedisPartitions = append(RedisPartitions, RedisPartition(i+1))
	}
}
