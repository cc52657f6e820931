// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Workflow describes one tested Galaxy workflow from the IWC manifest.
type Workflow struct {
	// Name is the workflow's display name.
	Name string `json:"name" yaml:"name"`

	// Description is the workflow annotation, when present.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// TRSID is the Tool Registry Service identifier used to import the
	// workflow into a Galaxy instance.
	TRSID string `json:"trs_id,omitempty" yaml:"trs_id,omitempty"`

	// IWCID is the workflow's identifier within the IWC collection.
	IWCID string `json:"iwc_id,omitempty" yaml:"iwc_id,omitempty"`

	// Release is the workflow release version.
	Release string `json:"release,omitempty" yaml:"release,omitempty"`

	// Categories lists the IWC collections the workflow belongs to.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// License is the workflow license identifier, when declared.
	License string `json:"license,omitempty" yaml:"license,omitempty"`

	// Creators lists the names of the workflow authors.
	Creators []string `json:"creators,omitempty" yaml:"creators,omitempty"`

	// Tags lists the workflow's descriptive tags.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}
