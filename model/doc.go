// Package model defines the minimal client contract the controller needs to
// exchange an ordered list of role-tagged messages for one completion string,
// unified across providers so the loop never branches per vendor. Concrete
// adapters live in the model/openai and model/anthropic subpackages; a
// scripted MockClient supports tests and examples.
package model
