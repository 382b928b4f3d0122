package generator

import (
	"fmt"
	"strings"

	"github.com/kngsnwn/gigapress/entity"
)

// MainTF renders a main.tf with provider requirements, provider blocks
// and resource blocks.
func MainTF(providers []entity.TerraformProvider, resources []entity.TerraformResource) string {
	var b strings.Builder

	b.WriteString("terraform {\n")
	b.WriteString("  required_providers {\n")
	for _, provider := range providers {
		fmt.Fprintf(&b, "    %s = {\n", provider.Name)
		fmt.Fprintf(&b, "      source  = \"hashicorp/%s\"\n", provider.Name)
		fmt.Fprintf(&b, "      version = \"%s\"\n", provider.Version)
		b.WriteString("    }\n")
	}
	b.WriteString("  }\n")
	b.WriteString("}\n\n")

	for _, provider := range providers {
		fmt.Fprintf(&b, "provider \"%s\" {\n", provider.Name)
		for _, key := range sortedKeys(provider.Configuration) {
			fmt.Fprintf(&b, "  %s = %s\n", key, hclValue(provider.Configuration[key], 1))
		}
		b.WriteString("}\n\n")
	}

	for _, resource := range resources {
		fmt.Fprintf(&b, "resource \"%s\" \"%s\" {\n", resource.Type, resource.Name)
		for _, key := range sortedKeys(resource.Properties) {
			fmt.Fprintf(&b, "  %s = %s\n", key, hclValue(resource.Properties[key], 1))
		}
		b.WriteString("}\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// VariablesTF renders a variables.tf.
func VariablesTF(variables []entity.TerraformVariable) string {
	var b strings.Builder
	for _, v := range variables {
		fmt.Fprintf(&b, "variable \"%s\" {\n", v.Name)
		fmt.Fprintf(&b, "  type        = %s\n", v.Type)
		if v.Description != "" {
			fmt.Fprintf(&b, "  description = \"%s\"\n", v.Description)
		}
		if v.Default != nil {
			fmt.Fprintf(&b, "  default     = %s\n", hclValue(v.Default, 1))
		}
		b.WriteString("}\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// OutputsTF renders an outputs.tf.
func OutputsTF(outputs []entity.TerraformOutput) string {
	var b strings.Builder
	for _, out := range outputs {
		fmt.Fprintf(&b, "output \"%s\" {\n", out.Name)
		fmt.Fprintf(&b, "  value       = %s\n", out.Value)
		if out.Description != "" {
			fmt.Fprintf(&b, "  description = \"%s\"\n", out.Description)
		}
		if out.Sensitive {
			b.WriteString("  sensitive   = true\n")
		}
		b.WriteString("}\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func hclValue(value any, depth int) string {
	indent := strings.Repeat("  ", depth)
	switch v := value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case bool:
		return fmt.Sprintf("%t", v)
	case int, int32, int64, float32, float64:
		return fmt.Sprintf("%v", v)
	case []string:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprintf("%q", item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, hclValue(item, depth))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		var b strings.Builder
		b.WriteString("{\n")
		for _, key := range sortedKeys(v) {
			fmt.Fprintf(&b, "%s  %s = %s\n", indent, key, hclValue(v[key], depth+1))
		}
		b.WriteString(indent + "}")
		return b.String()
	default:
		return fmt.Sprintf("%q", fmt.Sprintf("%v", v))
	}
}

// AWSResources returns the default AWS footprint: a VPC and an EKS cluster.
func AWSResources(projectID, region string) ([]entity.TerraformProvider, []entity.TerraformResource) {
	providers := []entity.TerraformProvider{
		{
			Name:    "aws",
			Version: "~> 5.0",
			Configuration: map[string]any{
				"region": region,
			},
		},
	}
	resources := []entity.TerraformResource{
		{
			Type: "aws_vpc",
			Name: "main",
			Properties: map[string]any{
				"cidr_block":           "10.0.0.0/16",
				"enable_dns_hostnames": true,
				"tags": map[string]any{
					"Name":    fmt.Sprintf("%s-vpc", projectID),
					"Project": projectID,
				},
			},
		},
		{
			Type: "aws_eks_cluster",
			Name: "main",
			Properties: map[string]any{
				"name":     "gigapress-cluster",
				"role_arn": "aws_iam_role.eks.arn",
				"version":  "1.27",
				"tags": map[string]any{
					"Project": projectID,
				},
			},
		},
	}
	return providers, resources
}

// GCPResources returns the default GCP footprint: a GKE cluster.
func GCPResources(projectID, region string) ([]entity.TerraformProvider, []entity.TerraformResource) {
	if region == "" {
		region = "us-central1"
	}
	providers := []entity.TerraformProvider{
		{
			Name:    "google",
			Version: "~> 4.0",
			Configuration: map[string]any{
				"project": projectID,
				"region":  region,
			},
		},
	}
	resources := []entity.TerraformResource{
		{
			Type: "google_container_cluster",
			Name: "main",
			Properties: map[string]any{
				"name":               "gigapress-cluster",
				"location":           region,
				"initial_node_count": 3,
			},
		},
	}
	return providers, resources
}

// AzureResources returns the default Azure footprint: a resource group
// and an AKS cluster.
func AzureResources(projectID, region string) ([]entity.TerraformProvider, []entity.TerraformResource) {
	if region == "" {
		region = "eastus"
	}
	providers := []entity.TerraformProvider{
		{
			Name:          "azurerm",
			Version:       "~> 3.0",
			Configuration: map[string]any{"features": map[string]any{}},
		},
	}
	resources := []entity.TerraformResource{
		{
			Type: "azurerm_resource_group",
			Name: "main",
			Properties: map[string]any{
				"name":     fmt.Sprintf("%s-rg", projectID),
				"location": region,
			},
		},
		{
			Type: "azurerm_kubernetes_cluster",
			Name: "main",
			Properties: map[string]any{
				"name":                "gigapress-cluster",
				"location":            region,
				"resource_group_name": fmt.Sprintf("%s-rg", projectID),
				"dns_prefix":          projectID,
			},
		},
	}
	return providers, resources
}
