package generator

import (
	"strings"
	"testing"

	"github.com/kngsnwn/gigapress/entity"
)

func TestMainTFAWS(t *testing.T) {
	providers, resources := AWSResources("shop-01", "ap-northeast-2")
	body := MainTF(providers, resources)

	for _, want := range []string{
		"terraform {",
		"required_providers {",
		`source  = "hashicorp/aws"`,
		`version = "~> 5.0"`,
		`provider "aws" {`,
		`region = "ap-northeast-2"`,
		`resource "aws_vpc" "main" {`,
		`cidr_block = "10.0.0.0/16"`,
		"enable_dns_hostnames = true",
		`resource "aws_eks_cluster" "main" {`,
		`name = "gigapress-cluster"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("main.tf missing %q:\n%s", want, body)
		}
	}
}

func TestMainTFNestedMaps(t *testing.T) {
	body := MainTF(nil, []entity.TerraformResource{{
		Type: "aws_instance",
		Name: "web",
		Properties: map[string]any{
			"tags": map[string]any{
				"Name": "web",
				"Env":  "prod",
			},
		},
	}})

	if !strings.Contains(body, "tags = {") {
		t.Fatalf("nested map not rendered as block:\n%s", body)
	}
	// Keys come out sorted so output is deterministic.
	if strings.Index(body, `Env = "prod"`) > strings.Index(body, `Name = "web"`) {
		t.Error("nested keys not sorted")
	}
}

func TestGCPResources(t *testing.T) {
	providers, resources := GCPResources("shop-01", "")
	if providers[0].Configuration["region"] != "us-central1" {
		t.Errorf("default region = %v", providers[0].Configuration["region"])
	}
	if resources[0].Properties["initial_node_count"] != 3 {
		t.Errorf("node count = %v", resources[0].Properties["initial_node_count"])
	}
}

func TestAzureResources(t *testing.T) {
	_, resources := AzureResources("shop-01", "")
	if len(resources) != 2 {
		t.Fatalf("expected resource group and cluster, got %d resources", len(resources))
	}
	if resources[0].Properties["location"] != "eastus" {
		t.Errorf("default location = %v", resources[0].Properties["location"])
	}
}

func TestVariablesTF(t *testing.T) {
	body := VariablesTF([]entity.TerraformVariable{{
		Name:        "environment",
		Type:        "string",
		Default:     "dev",
		Description: "Deployment environment",
	}})

	for _, want := range []string{
		`variable "environment" {`,
		"type        = string",
		`description = "Deployment environment"`,
		`default     = "dev"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("variables.tf missing %q:\n%s", want, body)
		}
	}
}

func TestOutputsTF(t *testing.T) {
	body := OutputsTF([]entity.TerraformOutput{{
		Name:      "cluster_endpoint",
		Value:     "aws_eks_cluster.main.endpoint",
		Sensitive: true,
	}})

	if !strings.Contains(body, `output "cluster_endpoint" {`) {
		t.Errorf("missing output block:\n%s", body)
	}
	if !strings.Contains(body, "sensitive   = true") {
		t.Errorf("missing sensitive flag:\n%s", body)
	}
}
