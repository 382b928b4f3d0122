package controller

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/kngsnwn/gigapress/entity"
	"github.com/kngsnwn/gigapress/generator"
	"github.com/kngsnwn/gigapress/http/controller/dto"
	"github.com/kngsnwn/gigapress/utils"
)

type manifestFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

func (ctrl *Controller) GenerateK8sManifests(c *gin.Context) {
	var req dto.K8sManifestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}
	if req.Environment == "" {
		req.Environment = "dev"
	}
	namespace := fmt.Sprintf("%s-%s", req.ProjectID, req.Environment)

	var manifests []manifestFile

	namespaceManifest, err := generator.K8sNamespace(namespace)
	if err != nil {
		utils.JSON500(c, "Failed to generate namespace: "+err.Error())
		return
	}
	manifests = append(manifests, manifestFile{"namespace.yaml", namespaceManifest})

	for _, svc := range req.Services {
		deployment, err := generator.K8sDeployment(entity.K8sDeploymentConfig{
			Name:        svc.Name,
			Namespace:   namespace,
			Replicas:    svc.Replicas,
			Image:       svc.Image,
			Ports:       svc.Ports,
			Environment: svc.Environment,
			Resources:   svc.Resources,
		})
		if err != nil {
			utils.JSON500(c, "Failed to generate deployment: "+err.Error())
			return
		}
		manifests = append(manifests, manifestFile{svc.Name + "-deployment.yaml", deployment})

		ports := make([]entity.K8sServicePort, 0, len(svc.Ports))
		for _, port := range svc.Ports {
			ports = append(ports, entity.K8sServicePort{Port: port, TargetPort: port, Protocol: "TCP"})
		}
		service, err := generator.K8sService(entity.K8sServiceConfig{
			Name:      svc.Name,
			Namespace: namespace,
			Type:      svc.ServiceType,
			Ports:     ports,
			Selector:  map[string]string{"app": svc.Name},
		})
		if err != nil {
			utils.JSON500(c, "Failed to generate service: "+err.Error())
			return
		}
		manifests = append(manifests, manifestFile{svc.Name + "-service.yaml", service})
	}

	if req.EnableIngress {
		first := req.Services[0]
		var port int
		if len(first.Ports) > 0 {
			port = first.Ports[0]
		}
		ingress, err := generator.K8sIngress(entity.K8sIngressConfig{
			Name:      req.ProjectID + "-ingress",
			Namespace: namespace,
			Host:      req.ProjectID + ".example.com",
			Paths: []entity.K8sIngressPath{{
				Path:        "/",
				PathType:    "Prefix",
				ServiceName: first.Name,
				ServicePort: port,
			}},
			Annotations: map[string]string{
				"kubernetes.io/ingress.class":    "nginx",
				"cert-manager.io/cluster-issuer": "letsencrypt-prod",
			},
		})
		if err != nil {
			utils.JSON500(c, "Failed to generate ingress: "+err.Error())
			return
		}
		manifests = append(manifests, manifestFile{"ingress.yaml", ingress})
	}

	if req.EnableHPA {
		for _, svc := range req.Services {
			hpa, err := generator.K8sHPA(svc.Name+"-hpa", namespace, svc.Name, 1, 10, 80)
			if err != nil {
				utils.JSON500(c, "Failed to generate hpa: "+err.Error())
				return
			}
			manifests = append(manifests, manifestFile{svc.Name + "-hpa.yaml", hpa})
		}
	}

	names := make([]string, 0, len(manifests))
	for _, manifest := range manifests {
		names = append(names, manifest.Name)
	}
	kustomization, err := generator.Kustomization(names)
	if err != nil {
		utils.JSON500(c, "Failed to generate kustomization: "+err.Error())
		return
	}
	manifests = append(manifests, manifestFile{"kustomization.yaml", kustomization})

	ctrl.cache(c.Request.Context(), fmt.Sprintf("k8s-manifests:%s:%s", req.ProjectID, req.Environment), manifests)

	utils.JSON200(c, gin.H{
		"manifests":   manifests,
		"total_files": len(manifests),
	})
}

func (ctrl *Controller) GenerateConfigMap(c *gin.Context) {
	var req dto.ConfigMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}

	configmap, err := generator.K8sConfigMap(req.Name, req.ProjectID, req.Data)
	if err != nil {
		utils.JSON500(c, "Failed to generate configmap: "+err.Error())
		return
	}

	utils.JSON200(c, gin.H{
		"configmap": configmap,
		"name":      req.Name,
	})
}

func (ctrl *Controller) GenerateSecret(c *gin.Context) {
	var req dto.SecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}

	secret, err := generator.K8sSecret(req.Name, req.ProjectID, req.Data)
	if err != nil {
		utils.JSON500(c, "Failed to generate secret: "+err.Error())
		return
	}

	utils.JSON200(c, gin.H{
		"secret": secret,
		"name":   req.Name,
	})
}
