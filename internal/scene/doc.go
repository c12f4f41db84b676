// Package scene is a file-backed implementation of the host document.
//
// A scene file describes one page of a design file as a tree of nodes. It can
// be written as YAML, JSON or TOML; the format follows the file extension:
//
//	file: Icon Library
//	page: Icons
//	selection: ["1:2"]
//	nodes:
//	  - id: "1:1"
//	    type: FRAME
//	    name: Arrows
//	    children:
//	      - id: "1:2"
//	        type: COMPONENT_SET
//	        name: ic_arrow_up
//	        width: 112
//	        height: 72
//	        children: [...]
//
// Nodes marked locked reject every mutation with host.ErrReadOnly. Nodes
// marked external (detached library content) cannot list their children and
// return host.ErrChildrenUnavailable.
package scene
