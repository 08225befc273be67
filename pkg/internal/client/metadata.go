package client

import "github.com/mtlab/wfirma-go/pkg/internal/types"

// GetComponentMetadata returns the client metadata.
func (c *Client) GetComponentMetadata() types.ComponentMetadata {
	c.configLock.Lock()
	metadata := c.componentMetadata
	c.configLock.Unlock()
	return metadata
}

// SetComponentMetadata updates the client metadata.
func (c *Client) SetComponentMetadata(name string, id string) {
	c.configLock.Lock()
	c.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: c.componentMetadata.Type}
	c.configLock.Unlock()
}
