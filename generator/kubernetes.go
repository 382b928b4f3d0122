package generator

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kngsnwn/gigapress/entity"
)

type k8sMetadata struct {
	Name        string            `yaml:"name"`
	Namespace   string            `yaml:"namespace,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

type k8sManifest struct {
	APIVersion string            `yaml:"apiVersion"`
	Kind       string            `yaml:"kind"`
	Metadata   k8sMetadata       `yaml:"metadata"`
	Type       string            `yaml:"type,omitempty"`
	Data       map[string]string `yaml:"data,omitempty"`
	StringData map[string]string `yaml:"stringData,omitempty"`
	Spec       map[string]any    `yaml:"spec,omitempty"`
}

func renderManifest(m k8sManifest) (string, error) {
	body, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to render %s manifest: %w", m.Kind, err)
	}
	return string(body), nil
}

// K8sDeployment renders a Deployment manifest.
func K8sDeployment(cfg entity.K8sDeploymentConfig) (string, error) {
	replicas := cfg.Replicas
	if replicas <= 0 {
		replicas = 1
	}
	resources := cfg.Resources
	if len(resources) == 0 {
		resources = entity.DefaultK8sResources()
	}
	labels := map[string]string{"app": cfg.Name}
	for key, value := range cfg.Labels {
		labels[key] = value
	}

	container := map[string]any{
		"name":      cfg.Name,
		"image":     cfg.Image,
		"resources": resources,
	}
	if len(cfg.Ports) > 0 {
		ports := make([]map[string]any, 0, len(cfg.Ports))
		for _, port := range cfg.Ports {
			ports = append(ports, map[string]any{"containerPort": port})
		}
		container["ports"] = ports
	}
	if len(cfg.Environment) > 0 {
		env := make([]map[string]any, 0, len(cfg.Environment))
		for _, key := range sortedKeys(cfg.Environment) {
			env = append(env, map[string]any{"name": key, "value": cfg.Environment[key]})
		}
		container["env"] = env
	}

	return renderManifest(k8sManifest{
		APIVersion: "apps/v1",
		Kind:       "Deployment",
		Metadata: k8sMetadata{
			Name:        cfg.Name,
			Namespace:   cfg.Namespace,
			Labels:      labels,
			Annotations: cfg.Annotations,
		},
		Spec: map[string]any{
			"replicas": replicas,
			"selector": map[string]any{
				"matchLabels": map[string]string{"app": cfg.Name},
			},
			"template": map[string]any{
				"metadata": map[string]any{
					"labels": labels,
				},
				"spec": map[string]any{
					"containers": []map[string]any{container},
				},
			},
		},
	})
}

// K8sService renders a Service manifest.
func K8sService(cfg entity.K8sServiceConfig) (string, error) {
	serviceType := cfg.Type
	if serviceType == "" {
		serviceType = "ClusterIP"
	}
	ports := make([]map[string]any, 0, len(cfg.Ports))
	for _, port := range cfg.Ports {
		protocol := port.Protocol
		if protocol == "" {
			protocol = "TCP"
		}
		target := port.TargetPort
		if target == 0 {
			target = port.Port
		}
		ports = append(ports, map[string]any{
			"port":       port.Port,
			"targetPort": target,
			"protocol":   protocol,
		})
	}

	return renderManifest(k8sManifest{
		APIVersion: "v1",
		Kind:       "Service",
		Metadata: k8sMetadata{
			Name:      cfg.Name,
			Namespace: cfg.Namespace,
		},
		Spec: map[string]any{
			"type":     serviceType,
			"selector": cfg.Selector,
			"ports":    ports,
		},
	})
}

// K8sIngress renders an nginx-class Ingress manifest.
func K8sIngress(cfg entity.K8sIngressConfig) (string, error) {
	paths := make([]map[string]any, 0, len(cfg.Paths))
	for _, path := range cfg.Paths {
		pathType := path.PathType
		if pathType == "" {
			pathType = "Prefix"
		}
		paths = append(paths, map[string]any{
			"path":     path.Path,
			"pathType": pathType,
			"backend": map[string]any{
				"service": map[string]any{
					"name": path.ServiceName,
					"port": map[string]any{"number": path.ServicePort},
				},
			},
		})
	}

	spec := map[string]any{
		"rules": []map[string]any{{
			"host": cfg.Host,
			"http": map[string]any{"paths": paths},
		}},
	}
	if cfg.TLSSecret != "" {
		spec["tls"] = []map[string]any{{
			"hosts":      []string{cfg.Host},
			"secretName": cfg.TLSSecret,
		}}
	}

	return renderManifest(k8sManifest{
		APIVersion: "networking.k8s.io/v1",
		Kind:       "Ingress",
		Metadata: k8sMetadata{
			Name:        cfg.Name,
			Namespace:   cfg.Namespace,
			Annotations: cfg.Annotations,
		},
		Spec: spec,
	})
}

// K8sConfigMap renders a ConfigMap manifest.
func K8sConfigMap(name, namespace string, data map[string]string) (string, error) {
	return renderManifest(k8sManifest{
		APIVersion: "v1",
		Kind:       "ConfigMap",
		Metadata:   k8sMetadata{Name: name, Namespace: namespace},
		Data:       data,
	})
}

// K8sSecret renders an Opaque Secret manifest from plain values.
func K8sSecret(name, namespace string, data map[string]string) (string, error) {
	return renderManifest(k8sManifest{
		APIVersion: "v1",
		Kind:       "Secret",
		Metadata:   k8sMetadata{Name: name, Namespace: namespace},
		Type:       "Opaque",
		StringData: data,
	})
}

// K8sHPA renders a HorizontalPodAutoscaler targeting a deployment.
func K8sHPA(name, namespace, deployment string, minReplicas, maxReplicas, targetCPU int) (string, error) {
	if minReplicas <= 0 {
		minReplicas = 1
	}
	if maxReplicas <= 0 {
		maxReplicas = 10
	}
	if targetCPU <= 0 {
		targetCPU = 80
	}

	return renderManifest(k8sManifest{
		APIVersion: "autoscaling/v2",
		Kind:       "HorizontalPodAutoscaler",
		Metadata:   k8sMetadata{Name: name, Namespace: namespace},
		Spec: map[string]any{
			"scaleTargetRef": map[string]any{
				"apiVersion": "apps/v1",
				"kind":       "Deployment",
				"name":       deployment,
			},
			"minReplicas": minReplicas,
			"maxReplicas": maxReplicas,
			"metrics": []map[string]any{{
				"type": "Resource",
				"resource": map[string]any{
					"name": "cpu",
					"target": map[string]any{
						"type":               "Utilization",
						"averageUtilization": targetCPU,
					},
				},
			}},
		},
	})
}

// K8sPVC renders a PersistentVolumeClaim manifest.
func K8sPVC(name, namespace, size, storageClass string) (string, error) {
	if size == "" {
		size = "10Gi"
	}
	if storageClass == "" {
		storageClass = "standard"
	}

	return renderManifest(k8sManifest{
		APIVersion: "v1",
		Kind:       "PersistentVolumeClaim",
		Metadata:   k8sMetadata{Name: name, Namespace: namespace},
		Spec: map[string]any{
			"accessModes":      []string{"ReadWriteOnce"},
			"storageClassName": storageClass,
			"resources": map[string]any{
				"requests": map[string]string{"storage": size},
			},
		},
	})
}

// K8sNamespace renders a Namespace manifest.
func K8sNamespace(name string) (string, error) {
	return renderManifest(k8sManifest{
		APIVersion: "v1",
		Kind:       "Namespace",
		Metadata:   k8sMetadata{Name: name},
	})
}

// Kustomization renders a kustomization.yaml listing the given resources.
func Kustomization(resources []string) (string, error) {
	body, err := yaml.Marshal(map[string]any{
		"apiVersion": "kustomize.config.k8s.io/v1beta1",
		"kind":       "Kustomization",
		"resources":  resources,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render kustomization.yaml: %w", err)
	}
	return string(body), nil
}
