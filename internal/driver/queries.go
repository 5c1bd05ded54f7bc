package driver

// Cypher for persisting a normalized snapshot. Every statement is keyed by
// snapshot_id so successive snapshots never collide; readers always query a
// single snapshot_id, which is how last-write-wins stays atomic from their
// point of view.
const (
	SaveNodeQuery = `
		MERGE (n:Entity {id: $id, snapshot_id: $snapshot_id})
		SET n.label = $label,
			n.type = $type,
			n.is_comparator = $is_comparator
		RETURN n.id AS id
	`

	SaveEdgeQuery = `
		MATCH (s:Entity {id: $source, snapshot_id: $snapshot_id})
		MATCH (t:Entity {id: $target, snapshot_id: $snapshot_id})
		MERGE (s)-[r:CLAIM {relationship: $relationship, snapshot_id: $snapshot_id}]->(t)
		SET r.weight = $weight
		RETURN $source AS source
	`

	SavePathQuery = `
		MERGE (p:ReasoningPath {id: $id, snapshot_id: $snapshot_id})
		SET p.nodes = $nodes,
			p.confidence_score = $confidence_score,
			p.source_count = $source_count
		RETURN p.id AS id
	`

	DeleteSnapshotQuery = `
		MATCH (n {snapshot_id: $snapshot_id})
		DETACH DELETE n
	`

	CountSnapshotNodesQuery = `
		MATCH (n:Entity {snapshot_id: $snapshot_id})
		RETURN count(n) AS count
	`
)
