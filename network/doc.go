// Package network reads and writes route networks as YAML documents.
//
// A document declares stations explicitly, as whole lines, or both:
//
//	nodes: ["X~Exchange"]
//	lines:
//	  - code: A
//	    stops: [Alpha, Beta, Gamma]
//	    weights: [4, 6]
//	edges:
//	  - {from: A~Gamma, to: X~Exchange, weight: 3}
//
// Each line expands to keys "<code>~<stop>" joined in stop order, with
// weights[i] on the edge between stops[i] and stops[i+1]. Explicit edges
// may only reference stations declared by nodes or lines.
//
// Load returns a ready core.Graph; Encode writes a graph back as a
// nodes+edges document that Load accepts.
package network
