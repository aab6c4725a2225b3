package partition

// Shard exposes shard for edge case tests.
var Shard = shard
