package driver

const (
	SaveExtractionQuery = `
		MERGE (x:Extraction {uuid: $uuid})
		SET x.created_at = $created_at,
			x.provider = $provider,
			x.language = $language,
			x.node_count = $node_count,
			x.edge_count = $edge_count
		RETURN x.uuid AS uuid
	`

	ClearGraphQuery = `
		MATCH (n:Concept {graph_id: $graph_id})
		DETACH DELETE n
	`

	SaveConceptQuery = `
		MATCH (x:Extraction {uuid: $graph_id})
		MERGE (n:Concept {graph_id: $graph_id, id: $id})
		SET n.label = $label,
			n.group = $group,
			n.position = $position
		MERGE (x)-[:CONTAINS]->(n)
		RETURN n.id AS id
	`

	SaveRelationQuery = `
		MATCH (source:Concept {graph_id: $graph_id, id: $from})
		MATCH (target:Concept {graph_id: $graph_id, id: $to})
		MERGE (source)-[r:RELATES_TO {graph_id: $graph_id, position: $position}]->(target)
		SET r.label = $label
		RETURN r.label AS label
	`

	GetGraphConceptsQuery = `
		MATCH (n:Concept {graph_id: $graph_id})
		RETURN n.id AS id, n.label AS label, n.group AS group
		ORDER BY n.position
	`

	GetGraphRelationsQuery = `
		MATCH (s:Concept {graph_id: $graph_id})-[r:RELATES_TO]->(t:Concept {graph_id: $graph_id})
		RETURN s.id AS from, t.id AS to, r.label AS label
		ORDER BY r.position
	`
)
