// Package partition derives storage partition keys from session ids.
//
// A partition key is the application name followed by a shard index in
// [0, partitions). The index comes from a 128-bit hash of the session id:
// the first four bytes are read as a little-endian int32, made non-negative
// and reduced modulo the number of partitions. The hash only spreads keys
// evenly; it is not a security boundary.
//
// # Usage
//
//	gen := partition.New()
//	key := gen.GeneratePartitionKey("myapp", sessionID) // e.g. "myapp7"
//
// MD5 is the default hash so keys match partitions written by existing
// deployments. New deployments can opt into murmur3:
//
//	gen := partition.New(partition.WithHash(partition.Murmur3))
package partition
