package router

const indexHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>AI infrastructure showcase</title></head>
<body>
<h1>AI infrastructure showcase</h1>

<h2>System check:</h2>
<a href="/health">/health</a> - status of all services<br><br>

<h2>Test endpoints:</h2>
<a href="/test/redis">/test/redis</a> - Redis test<br>
<a href="/test/qdrant">/test/qdrant</a> - Qdrant test<br>
<a href="/cache/data">/cache/data</a> - view cache<br><br>

<h2>Vectors:</h2>
<a href="/vectors">/vectors</a> - vector collections<br>
<a href="/search?query=hello">/search?query=hello</a> - vector search
</body>
</html>
`
