// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package viewcache caches rendered JSON payloads for the poll listing and
poll detail views.

Keys follow a fixed vocabulary: ListingKey for the public listing,
PollKey(id) for one poll's detail. Mutations in the engine invalidate
these keys, so a stale entry lives at most one TTL after its last write.

The cache is in-process and best-effort: a miss or an expired entry just
means the handler rebuilds the view from the database.
*/
package viewcache
