package anthropic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseText(t *testing.T) {
	t.Parallel()

	resp := &MessageResponse{
		Content: []ContentBlock{
			{Type: "text", Text: `{"names":`},
			{Type: "tool_use", Text: "ignored"},
			{Type: "text", Text: `[]}`},
		},
	}
	assert.Equal(t, `{"names":[]}`, resp.Text())

	var nilResp *MessageResponse
	assert.Equal(t, "", nilResp.Text())
}

func TestToSDKMessages(t *testing.T) {
	t.Parallel()

	msgs := toSDKMessages([]Message{
		{Role: "user", Content: "extract names"},
		{
			Role:    "user",
			Content: "extract names from this image",
			Image:   &Image{MediaType: "image/png", Data: "QUJD"},
		},
		{Role: "assistant", Content: "ok"},
	})
	require.Len(t, msgs, 3)

	assert.Equal(t, "user", string(msgs[0].Role))
	require.Len(t, msgs[0].Content, 1)

	// Text block first, then the image block.
	require.Len(t, msgs[1].Content, 2)
	require.NotNil(t, msgs[1].Content[0].OfText)
	assert.Equal(t, "extract names from this image", msgs[1].Content[0].OfText.Text)
	require.NotNil(t, msgs[1].Content[1].OfImage)

	assert.Equal(t, "assistant", string(msgs[2].Role))
}

func TestNewClient(t *testing.T) {
	t.Parallel()
	c := NewClient("test-key")
	require.NotNil(t, c)
}
