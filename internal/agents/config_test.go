package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentlab/pkg/templates"
)

func TestDefaultAgentConfigsComplete(t *testing.T) {
	for agentType, cfg := range DefaultAgentConfigs {
		assert.Equal(t, agentType, cfg.Type, "config key should match its Type")
		assert.NotEmpty(t, cfg.Name, "agent %s needs a name", agentType)
		assert.NotEmpty(t, cfg.Description, "agent %s needs a description", agentType)
		assert.NotEmpty(t, cfg.SystemPromptTemplate, "agent %s needs a prompt template", agentType)
	}
}

func TestDefaultAgentConfigsTemplatesExist(t *testing.T) {
	reg := templates.Get()
	for agentType, cfg := range DefaultAgentConfigs {
		_, err := reg.GetTemplate(cfg.SystemPromptTemplate)
		require.NoError(t, err, "agent %s references missing template %s", agentType, cfg.SystemPromptTemplate)
	}
}

func TestAgentConfigClone(t *testing.T) {
	original := DefaultAgentConfigs[AgentTranslatorSpanish]
	clone := original.Clone()

	clone.Name = "PortugueseTranslator"
	clone.PromptData["Language"] = "Portuguese"
	clone.Tools = append(clone.Tools, "count_words")

	assert.Equal(t, "SpanishTranslator", original.Name)
	assert.Equal(t, "Spanish", original.PromptData["Language"])
	assert.NotContains(t, original.Tools, "count_words")

	assert.Equal(t, "PortugueseTranslator", clone.Name)
	assert.Equal(t, "Portuguese", clone.PromptData["Language"])
}

func TestTranslatorsShareTemplate(t *testing.T) {
	spanish := DefaultAgentConfigs[AgentTranslatorSpanish]
	french := DefaultAgentConfigs[AgentTranslatorFrench]

	assert.Equal(t, spanish.SystemPromptTemplate, french.SystemPromptTemplate)
	assert.NotEqual(t, spanish.OutputKey, french.OutputKey)
}
