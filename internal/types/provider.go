package types

import "encoding/json"

// Provider represents a unique identifier for a cloud provider
type Provider string

// Provider constants define the supported cloud providers
const (
	// ProviderAWS represents Amazon Web Services
	ProviderAWS Provider = "aws"

	// ProviderAzure represents Microsoft Azure
	ProviderAzure Provider = "azure"

	// ProviderGCP represents Google Cloud Platform
	ProviderGCP Provider = "gcp"

	// ProviderOnPremise represents on-premise infrastructure
	ProviderOnPremise Provider = "onpremise"
)

// String implements the fmt.Stringer interface
func (p Provider) String() string {
	return string(p)
}

// MarshalJSON implements the json.Marshaler interface
func (p Provider) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (p *Provider) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	*p = Provider(str)
	return nil
}

// IsValid checks if the provider is a supported provider
func (p Provider) IsValid() bool {
	switch p {
	case ProviderAWS, ProviderAzure, ProviderGCP, ProviderOnPremise:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable name of the provider
func (p Provider) DisplayName() string {
	switch p {
	case ProviderAWS:
		return "AWS"
	case ProviderAzure:
		return "Azure"
	case ProviderGCP:
		return "Google Cloud"
	case ProviderOnPremise:
		return "On-Premise"
	default:
		return string(p)
	}
}

// AllProviders returns every supported provider
func AllProviders() []Provider {
	return []Provider{ProviderAWS, ProviderAzure, ProviderGCP, ProviderOnPremise}
}
